package prompts

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/soypat/foil"
)

// RunGenerateForm prompts for whichever generation inputs are still
// empty, filling the provided pointers. An empty chord after the form
// means the caller's default applies.
func RunGenerateForm(code, axis, chord *string) error {
	var groups []*huh.Group
	if *code == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("NACA 4-digit code").
				Placeholder("2412").
				Validate(func(s string) error {
					_, err := foil.ParseNACA4(strings.TrimSpace(s))
					return err
				}).
				Value(code),
		))
	}
	if *axis == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Axis the profile is normal to").
				Options(
					huh.NewOption("Z (profile in the XY plane)", "Z"),
					huh.NewOption("Y (profile in the XZ plane)", "Y"),
					huh.NewOption("X (profile in the YZ plane)", "X"),
				).
				Value(axis),
		))
	}
	if *chord == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Chord length").
				Placeholder("1.0").
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					v, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return errors.New("chord must be a number")
					}
					if v <= 0 {
						return errors.New("chord must be positive")
					}
					return nil
				}).
				Value(chord),
		))
	}
	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(Theme()).Run()
}
