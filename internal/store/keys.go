// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Storage keys of the tracker layout.
const (
	KeyUsers             = "users"
	KeyLeads             = "leads"
	KeyDocumentPending   = "documentPending"
	KeyDocumentHistory   = "documentHistory"
	KeyBankPending       = "bankPending"
	KeyBankHistory       = "bankHistory"
	KeyBankStatusPending = "bankStatusPending"
	KeyBankStatusHistory = "bankStatusHistory"
	KeyActiveUser        = "activeUser"
	KeyLastSerialNo      = "lastSerialNo"
	KeyLastBankAppNo     = "lastBankAppNo"
	KeyInitialized       = "loanTrackerInitialized"
)

// namespacedKey prefixes key with the namespace, e.g. "loan-tracker:leads".
// An empty namespace leaves the key unchanged.
func namespacedKey(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return namespace + ":" + key
}

// entrySize is the number of bytes a key/value pair counts against the quota.
func entrySize(key string, value []byte) int64 {
	return int64(len(key) + len(value))
}
