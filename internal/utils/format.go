// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	rupeeSign      = "₹"
	dateLayout     = "2 Jan 2006"
	dateTimeLayout = "2 Jan 2006, 15:04"
)

// FormatCurrency renders amount as whole rupees with Indian digit grouping,
// e.g. 1234567 -> "₹12,34,567".
func FormatCurrency(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + rupeeSign + groupIndian(strconv.FormatInt(n, 10))
}

// groupIndian inserts separators after the last three digits and then
// after every two digits.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return strings.Join(groups, ",") + "," + tail
}

// FormatDate renders t in local time as "2 Jan 2006". The zero time renders
// as "-".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateLayout)
}

// FormatDateTime renders t in local time as "2 Jan 2006, 15:04".
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateTimeLayout)
}
