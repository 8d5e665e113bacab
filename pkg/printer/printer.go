// Package printer probes the host for print facilities and dispatches
// receipts through a cascade of strategies with graceful fallback.
package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Printer sends a raw ESC/POS byte stream to a thermal device. A receipt
// is one self-contained job; connections are opened and torn down per job
// so an unplugged printer is noticed on the next sale, not the next
// restart.
type Printer interface {
	Print(data []byte) error
	Close() error
	IsConnected() bool
}

// devicePrinter writes to a character device file such as /dev/usb/lp0.
// Thermal printers on the usblp driver can short-write under load, so the
// stream is pushed until the kernel has taken all of it.
type devicePrinter struct {
	path string
}

// NewUSBPrinter returns a printer backed by a USB device file.
func NewUSBPrinter(devicePath string) Printer {
	return &devicePrinter{path: devicePath}
}

func (p *devicePrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open %s: %w", p.path, err)
	}
	defer f.Close()

	for len(data) > 0 {
		n, err := f.Write(data)
		if err != nil {
			return fmt.Errorf("printer: write %s: %w", p.path, err)
		}
		data = data[n:]
	}
	return nil
}

func (p *devicePrinter) Close() error { return nil }

// IsConnected reports whether the device file exists; the usblp driver
// removes it when the printer is unplugged.
func (p *devicePrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// tcpPrinter speaks the raw-socket printing convention on port 9100.
type tcpPrinter struct {
	address      string
	dialTimeout  time.Duration
	writeTimeout time.Duration
}

// NewNetworkPrinter returns a printer that dials a host:port address,
// conventionally port 9100.
func NewNetworkPrinter(address string) Printer {
	return &tcpPrinter{
		address:      address,
		dialTimeout:  5 * time.Second,
		writeTimeout: 10 * time.Second,
	}
}

func (p *tcpPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.dialTimeout)
	if err != nil {
		return fmt.Errorf("printer: dial %s: %w", p.address, err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(p.writeTimeout)); err != nil {
		return fmt.Errorf("printer: deadline %s: %w", p.address, err)
	}
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.address, err)
	}
	return nil
}

func (p *tcpPrinter) Close() error { return nil }

func (p *tcpPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// nullPrinter swallows jobs. It exists so hardware-less environments can
// still exercise the print path; IsConnected stays false so callers know
// nothing reached paper.
type nullPrinter struct{}

// NewNullPrinter returns the no-op printer.
func NewNullPrinter() Printer { return nullPrinter{} }

func (nullPrinter) Print(data []byte) error { return nil }
func (nullPrinter) Close() error            { return nil }
func (nullPrinter) IsConnected() bool       { return false }

// NewPrinterFromConfig maps the configured printer type to a device:
// "usb" (device file), "network" (host:port) or "none".
func NewPrinterFromConfig(printerType, usbPath, address string) (Printer, error) {
	switch printerType {
	case "usb":
		if usbPath == "" {
			return nil, fmt.Errorf("printer: usb type requires a device path")
		}
		return NewUSBPrinter(usbPath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: network type requires an address")
		}
		return NewNetworkPrinter(address), nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown type %q (use usb, network, or none)", printerType)
	}
}
