// Package seats holds the fixed seat map and the set arithmetic used when
// validating a booking request.  Every movie shares the same six-seat
// universe; seat codes travel over the API as a single comma-separated
// string and are normalised here before any availability check.
package seats

import "strings"

// Universe returns the fixed set of bookable seat codes, in display order.
// The seat map is not configurable.
func Universe() []string {
	return []string{"A1", "A2", "A3", "B1", "B2", "B3"}
}

// Parse splits a comma-separated seat string into individual seat codes.
// Each code is trimmed of surrounding whitespace; empty entries are
// dropped and duplicates are removed while preserving first-seen order.
func Parse(seatsText string) []string {
	parts := strings.Split(seatsText, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Available returns the seats of the universe that do not appear in
// booked, in universe order.
func Available(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, s := range booked {
		taken[s] = struct{}{}
	}
	out := make([]string, 0, 6)
	for _, s := range Universe() {
		if _, ok := taken[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// Unavailable returns the requested seats that are not in available, in
// request order.  A seat lands here either because it is outside the
// universe or because an existing booking already holds it; the caller
// cannot tell the two apart, matching the booking error message which
// names both cases at once.
func Unavailable(requested, available []string) []string {
	ok := make(map[string]struct{}, len(available))
	for _, s := range available {
		ok[s] = struct{}{}
	}
	var out []string
	for _, s := range requested {
		if _, free := ok[s]; !free {
			out = append(out, s)
		}
	}
	return out
}
