// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// ReadNumbers reads a list of numbers separated by whitespace and / or
// commas, as used in SVG attributes like viewBox, points and
// stdDeviation. It returns the numbers read before any error.
func ReadNumbers(str string) ([]float32, error) {
	b := []byte(str)
	var nums []float32
	i := 0
	for i < len(b) {
		c := b[i]
		if c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' {
			i++
			continue
		}
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 || !IsFinite(float32(f)) {
			return nums, fmt.Errorf("math32.ReadNumbers: invalid number at %d in %q", i, str)
		}
		nums = append(nums, float32(f))
		i += n
	}
	return nums, nil
}

// ReadPoints reads a list of x,y coordinate pairs. An odd trailing
// number is an error, following the SVG points grammar.
func ReadPoints(str string) ([]Vector2, error) {
	nums, err := ReadNumbers(str)
	if err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		return nil, fmt.Errorf("math32.ReadPoints: odd number of coordinates in %q", str)
	}
	pts := make([]Vector2, len(nums)/2)
	for i := range pts {
		pts[i] = Vec2(nums[2*i], nums[2*i+1])
	}
	return pts, nil
}
