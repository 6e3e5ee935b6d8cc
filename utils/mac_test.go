package utils

import (
	"net"
	"strings"
	"testing"
)

func TestGenMac(t *testing.T) {
	mac := GenMac("aa:5b:ed")

	if !strings.HasPrefix(mac, "aa:5b:ed:") {
		t.Errorf("mac %q does not carry the requested OUI", mac)
	}

	if _, err := net.ParseMAC(mac); err != nil {
		t.Errorf("generated mac %q does not parse: %v", mac, err)
	}
}
