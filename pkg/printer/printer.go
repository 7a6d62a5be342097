package printer

import (
	"fmt"
	"net"
	"time"
)

// Printer is the interface for sending raw ESC/POS data to a thermal printer.
type Printer interface {
	// Print sends raw ESC/POS bytes to the printer.
	Print(data []byte) error
	// Close releases the printer connection/handle.
	Close() error
	// IsConnected returns true if the printer endpoint is reachable.
	IsConnected() bool
}

// --- Network printer (dials TCP, e.g. 192.168.0.106:9100) ---

type networkPrinter struct {
	address     string
	dialTimeout time.Duration
}

// NewNetworkPrinter creates a printer that connects via TCP per print job.
// Address should include the port, e.g. "192.168.0.106:9100". dialTimeout
// bounds both the connect and the write so a hung printer cannot stall the
// calling request; pass 0 for the 5s default.
func NewNetworkPrinter(address string, dialTimeout time.Duration) Printer {
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}
	return &networkPrinter{
		address:     address,
		dialTimeout: dialTimeout,
	}
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.dialTimeout)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(p.dialTimeout))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) Close() error {
	return nil // connection is opened and closed per print job
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, p.dialTimeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// --- Null printer (printing disabled) ---

type nullPrinter struct{}

// NewNullPrinter returns a printer that silently discards all output.
// Used when no printer endpoint is configured.
func NewNullPrinter() Printer {
	return nullPrinter{}
}

func (nullPrinter) Print([]byte) error { return nil }
func (nullPrinter) Close() error       { return nil }
func (nullPrinter) IsConnected() bool  { return false }
