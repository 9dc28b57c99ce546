package system

import (
	"net"
)

// PrimaryIPv4 returns the first non-loopback IPv4 address of an interface
// that is up, or "offline" when none is found. Used by the menu status row.
func PrimaryIPv4() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "offline"
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip4 := ipNet.IP.To4(); ip4 != nil {
				return ip4.String()
			}
		}
	}
	return "offline"
}
