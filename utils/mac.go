package utils

import (
	"crypto/rand"
	"fmt"
)

// GenMac generates a random unicast MAC address within the provided OUI.
// The OUI is expected in "aa:bb:cc" form.
func GenMac(oui string) string {
	buf := make([]byte, 3)
	_, _ = rand.Read(buf)

	return fmt.Sprintf("%s:%02x:%02x:%02x", oui, buf[0], buf[1], buf[2])
}
