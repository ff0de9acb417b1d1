package mazecfg

import (
	"fmt"
	"strings"

	"github.com/erbsland-dev/erbsland-maze-go/endpoint"
	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/modifier"
)

// ParseEndSpec parses "placement[/offset[/x]]" per spec.md §6, e.g.
// "left", "nw/2", "center/1,-1/x".
func ParseEndSpec(text string) (endpoint.Declaration, error) {
	elements := strings.Split(text, "/")
	if len(elements) > 3 {
		return endpoint.Declaration{}, fmt.Errorf("endpoint spec %q: %w", text, ErrBadEndSpec)
	}
	p, err := geometry.ParsePlacement(elements[0])
	if err != nil {
		return endpoint.Declaration{}, fmt.Errorf("endpoint spec %q: %w: %w", text, ErrBadEndSpec, err)
	}
	decl := endpoint.Declaration{Placement: p, Offset: geometry.ZeroOffset}
	if len(elements) >= 2 && elements[1] != "" {
		offset, err := geometry.ParseOffset(elements[1])
		if err != nil {
			return endpoint.Declaration{}, fmt.Errorf("endpoint spec %q: %w: %w", text, ErrBadEndSpec, err)
		}
		decl.Offset = offset
	}
	if len(elements) == 3 {
		if elements[2] != "x" {
			return endpoint.Declaration{}, fmt.Errorf("endpoint spec %q: %w", text, ErrBadEndSpec)
		}
		decl.DeadEnd = true
	}
	return decl, nil
}

// parsePlacedSpec parses the "placement[/size[/offset]]" shape shared by
// BLANKSPEC and MERGESPEC.
func parsePlacedSpec(text string) (geometry.Placement, geometry.RoomSize, geometry.RoomOffset, error) {
	elements := strings.Split(text, "/")
	if len(elements) > 3 {
		return 0, geometry.RoomSize{}, geometry.RoomOffset{}, fmt.Errorf("spec %q has too many components", text)
	}
	p, err := geometry.ParsePlacement(elements[0])
	if err != nil {
		return 0, geometry.RoomSize{}, geometry.RoomOffset{}, err
	}
	size := geometry.SizeSingle
	if len(elements) >= 2 && elements[1] != "" {
		size, err = geometry.ParseSize(elements[1])
		if err != nil {
			return 0, geometry.RoomSize{}, geometry.RoomOffset{}, err
		}
	}
	offset := geometry.ZeroOffset
	if len(elements) == 3 && elements[2] != "" {
		offset, err = geometry.ParseOffset(elements[2])
		if err != nil {
			return 0, geometry.RoomSize{}, geometry.RoomOffset{}, err
		}
	}
	return p, size, offset, nil
}

// ParseBlankSpec parses "placement[/size[/offset]]" per spec.md §6, e.g.
// "nw/2x3", "center/single/1,1".
func ParseBlankSpec(text string) (modifier.Blank, error) {
	p, size, offset, err := parsePlacedSpec(text)
	if err != nil {
		return modifier.Blank{}, fmt.Errorf("blank spec %q: %w: %w", text, ErrBadBlankSpec, err)
	}
	return modifier.NewBlank(p, size, offset), nil
}

// ParseMergeSpec parses "placement[/size[/offset]]" per spec.md §6.
func ParseMergeSpec(text string) (modifier.MergeMod, error) {
	p, size, offset, err := parsePlacedSpec(text)
	if err != nil {
		return modifier.MergeMod{}, fmt.Errorf("merge spec %q: %w: %w", text, ErrBadMergeSpec, err)
	}
	return modifier.NewMerge(p, size, offset), nil
}

// ParseClosingSpec parses "[^]closing/placement[/size[/offset]]" per
// spec.md §6, e.g. "dv/nw/2x3", "^c/center".
func ParseClosingSpec(text string) (modifier.ClosingMod, error) {
	elements := strings.SplitN(text, "/", 2)
	if len(elements) != 2 {
		return modifier.ClosingMod{}, fmt.Errorf("closing spec %q: %w", text, ErrBadClosingSpec)
	}
	typeToken := elements[0]
	inverts := false
	if strings.HasPrefix(typeToken, "^") {
		inverts = true
		typeToken = typeToken[1:]
	}
	ct, err := modifier.ParseClosingType(typeToken)
	if err != nil {
		return modifier.ClosingMod{}, fmt.Errorf("closing spec %q: %w: %w", text, ErrBadClosingSpec, err)
	}
	p, size, offset, err := parsePlacedSpec(elements[1])
	if err != nil {
		return modifier.ClosingMod{}, fmt.Errorf("closing spec %q: %w: %w", text, ErrBadClosingSpec, err)
	}
	closing := modifier.Closing{Type: ct, Inverts: inverts}
	mod, err := modifier.NewClosing(closing, p, size, offset)
	if err != nil {
		return modifier.ClosingMod{}, fmt.Errorf("closing spec %q: %w: %w", text, ErrBadClosingSpec, err)
	}
	return mod, nil
}
