package security

import (
	"errors"
	"testing"
)

func TestCheckAllowed(t *testing.T) {
	bad := []string{
		"rm -rf /",
		"rm -rf / --no-preserve-root",
		"sudo rm -fr /*",
		"mkfs.ext4 /dev/sda",
		"dd if=/dev/zero of=/dev/sda bs=4096",
		":(){ :|:& };:",
		"wipefs -a /dev/sda",
	}
	for _, s := range bad {
		err := CheckAllowed(s)
		if err == nil {
			t.Fatalf("expected %q to be blocked", s)
		}
		if !errors.Is(err, ErrBlocked) {
			t.Fatalf("expected ErrBlocked for %q, got %v", s, err)
		}
	}

	good := []string{
		"",
		"echo hello",
		"ls -la",
		"rm -rf ./build",
		"dd if=in.img of=out.img",
		"sh -c 'echo safe'",
	}
	for _, s := range good {
		if err := CheckAllowed(s); err != nil {
			t.Fatalf("expected %q to be allowed: %v", s, err)
		}
	}
}

func TestRefusalNamesRule(t *testing.T) {
	err := CheckAllowed("wipefs -a /dev/sdb")
	if err == nil || err.Error() != "command appears destructive: signature wipe" {
		t.Fatalf("unexpected error: %v", err)
	}
}
