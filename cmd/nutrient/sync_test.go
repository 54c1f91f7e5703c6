// ABOUTME: Tests for the sync command family.
// ABOUTME: Exercises the SQLite-backend paths that need no Charm account.
package main

import (
	"testing"
)

func TestSyncSubcommandsRegistered(t *testing.T) {
	want := []string{"link", "unlink", "status", "repair", "reset", "wipe"}

	for _, name := range want {
		found := false
		for _, sub := range syncCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("sync subcommand %q not registered", name)
		}
	}
}

func TestSyncStatusWithSQLiteBackend(t *testing.T) {
	setupTestEnv(t)

	// With the default sqlite backend, status explains how to enable
	// sync and exits cleanly.
	if err := runCmd(t, "sync", "status"); err != nil {
		t.Fatalf("sync status: %v", err)
	}
}

func TestSyncResetWithSQLiteBackend(t *testing.T) {
	setupTestEnv(t)

	if err := runCmd(t, "sync", "reset"); err != nil {
		t.Fatalf("sync reset without charm backend should exit cleanly: %v", err)
	}
}

func TestSyncRepairForceFlag(t *testing.T) {
	flag := syncRepairCmd.Flags().Lookup("force")
	if flag == nil {
		t.Fatal("expected --force flag on sync repair")
	}
	if flag.DefValue != "false" {
		t.Errorf("force default = %q, want false", flag.DefValue)
	}
}
