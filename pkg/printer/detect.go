package printer

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Known thermal-printer USB vendor IDs. Detection is a best-effort
// advisory signal: a matching vendor among the already-attached devices,
// not a bidirectional printer protocol.
var thermalVendorIDs = map[uint16]string{
	0x04b8: "Epson",
	0x0519: "Star Micronics",
	0x0fe6: "ICS Advent",
	0x20d1: "Rongta",
	0x0dd4: "Custom Engineering",
	0x154f: "SNBC",
	0x0483: "STMicroelectronics",
	0x1fc9: "NXP",
	0x1a86: "QinHeng Electronics",
	0x0403: "FTDI",
}

// Capability reports what print facilities the host exposes. It is
// recomputed on every probe, never cached across the session.
type Capability struct {
	GenericPrintAvailable bool   `json:"generic_print_available"`
	ThermalDeviceDetected bool   `json:"thermal_device_detected"`
	ThermalVendor         string `json:"thermal_vendor,omitempty"`
}

const sysUSBDevices = "/sys/bus/usb/devices"

// Probe inspects the host fresh: a spooler command on PATH for generic
// printing, and the USB device registry for a known thermal vendor.
func Probe() Capability {
	c := Capability{
		GenericPrintAvailable: spoolCommand() != "",
	}
	c.ThermalVendor = detectThermalVendor(sysUSBDevices)
	c.ThermalDeviceDetected = c.ThermalVendor != ""
	return c
}

// spoolCommand returns the first system print command found on PATH.
// This is the minimum bar, a guard against exotic hosts rather than a real
// availability signal.
func spoolCommand() string {
	for _, name := range []string{"lp", "lpr"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// detectThermalVendor scans the sysfs USB registry for an attached device
// whose vendor ID is on the thermal allow-list, returning the vendor name.
func detectThermalVendor(root string) string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		raw, err := os.ReadFile(filepath.Join(root, e.Name(), "idVendor"))
		if err != nil {
			continue
		}
		id, err := strconv.ParseUint(strings.TrimSpace(string(raw)), 16, 16)
		if err != nil {
			continue
		}
		if vendor, ok := thermalVendorIDs[uint16(id)]; ok {
			return vendor
		}
	}
	return ""
}
