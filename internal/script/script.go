// Package script разбирает и проигрывает записанные последовательности
// событий указателя, например "down:100,200 move:120,210 up".
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-bezier-editor/internal/input"
)

// Step — один шаг сценария: событие указателя или изменение размера поверхности.
type Step struct {
	Resize bool
	Event  input.PointerEvent // Для шагов указателя

	// Для Resize; размер в физических пикселях
	WidthPx, HeightPx, DPR float64
}

func (s Step) String() string {
	if s.Resize {
		return fmt.Sprintf("resize:%g,%g,%g", s.WidthPx, s.HeightPx, s.DPR)
	}
	return s.Event.String()
}

// Target принимает шаги сценария. *editor.Editor ему удовлетворяет.
type Target interface {
	input.Handler
	Resize(widthPx, heightPx, dpr float64)
}

var phases = map[string]input.Phase{
	"down":  input.PhaseDown,
	"move":  input.PhaseMove,
	"up":    input.PhaseUp,
	"leave": input.PhaseLeave,
}

// Parse читает сценарий: лексемы через пробелы и переводы строк,
// от '#' до конца строки — комментарий.
//
//	down:x,y  move:x,y  up[:x,y]  leave[:x,y]  resize:w,h[,dpr]
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text, _, _ := strings.Cut(sc.Text(), "#")
		for _, tok := range strings.Fields(text) {
			step, err := parseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			steps = append(steps, step)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return steps, nil
}

// ParseString — Parse для сценария в строке.
func ParseString(s string) ([]Step, error) {
	return Parse(strings.NewReader(s))
}

func parseToken(tok string) (Step, error) {
	name, args, hasArgs := strings.Cut(tok, ":")
	var nums []float64
	if hasArgs {
		for _, f := range strings.Split(args, ",") {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Step{}, fmt.Errorf("%q: bad number %q: %w", tok, f, err)
			}
			nums = append(nums, v)
		}
	}

	if name == "resize" {
		switch len(nums) {
		case 2:
			return Step{Resize: true, WidthPx: nums[0], HeightPx: nums[1], DPR: 1}, nil
		case 3:
			if nums[2] <= 0 {
				return Step{}, fmt.Errorf("%q: dpr must be positive", tok)
			}
			return Step{Resize: true, WidthPx: nums[0], HeightPx: nums[1], DPR: nums[2]}, nil
		}
		return Step{}, fmt.Errorf("%q: resize needs w,h[,dpr]", tok)
	}

	phase, ok := phases[name]
	if !ok {
		return Step{}, fmt.Errorf("%q: unknown event %q", tok, name)
	}
	switch {
	case len(nums) == 2:
		return Step{Event: input.PointerEvent{X: nums[0], Y: nums[1], Phase: phase}}, nil
	case len(nums) == 0 && (phase == input.PhaseUp || phase == input.PhaseLeave):
		return Step{Event: input.PointerEvent{Phase: phase}}, nil
	}
	return Step{}, fmt.Errorf("%q: %s needs x,y", tok, name)
}

// Run проигрывает шаги на target по порядку.
func Run(steps []Step, target Target) {
	for _, s := range steps {
		if s.Resize {
			target.Resize(s.WidthPx, s.HeightPx, s.DPR)
			continue
		}
		target.Handle(s.Event)
	}
}
