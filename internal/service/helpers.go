// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
