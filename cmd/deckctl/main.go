package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/seagrayinc/streamdeck/internal/usbdiag"
	"github.com/seagrayinc/streamdeck/pkg/streamdeck"
	"github.com/seagrayinc/streamdeck/pkg/transport"
)

func main() {
	backend := flag.String("transport", os.Getenv("STREAMDECK_TRANSPORT"),
		"HID transport backend to use (empty to auto-probe)")
	lsusb := flag.Bool("lsusb", false, "dump raw USB descriptors for Elgato hardware and exit")
	watch := flag.Bool("watch", false, "re-enumerate every second until interrupted")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *lsusb {
		entries, err := usbdiag.List(streamdeck.VendorElgato)
		if err != nil {
			fmt.Fprintf(os.Stderr, "usb scan failed: %v\n", err)
			os.Exit(1)
		}
		if len(entries) == 0 {
			fmt.Println("no Elgato hardware on the bus")
			return
		}
		for _, e := range entries {
			fmt.Printf("bus %03d addr %03d %04x:%04x %s %s serial=%s\n",
				e.Bus, e.Address, e.VendorID, e.ProductID, e.Manufacturer, e.Product, e.Serial)
		}
		return
	}

	mgr, err := streamdeck.NewDeviceManager(*backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fmt.Fprintf(os.Stderr, "known backends: %v\n", transport.Backends())
		os.Exit(1)
	}
	defer mgr.Close()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM, syscall.SIGINT,
	)
	defer stop()

	if *watch {
		if err := watchDecks(ctx, mgr, time.Second, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "enumeration failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	decks, err := mgr.Enumerate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "enumeration failed: %v\n", err)
		os.Exit(1)
	}
	printDecks(os.Stdout, decks)
}

// watchDecks re-enumerates at the given interval until the context is
// canceled. The wait between scans aborts on cancellation, so an interrupt
// arriving mid-sleep never triggers another scan.
func watchDecks(ctx context.Context, mgr *streamdeck.DeviceManager, interval time.Duration, out io.Writer) error {
	for {
		decks, err := mgr.Enumerate()
		if err != nil {
			return err
		}
		printDecks(out, decks)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}

func printDecks(out io.Writer, decks []*streamdeck.Deck) {
	fmt.Fprintf(out, "found %d deck(s)\n", len(decks))
	for i, d := range decks {
		rows, cols := d.KeyLayout()
		fmt.Fprintf(out, "  [%d] %s (%d keys, %dx%d, %v) at %s\n",
			i, d.Name(), d.KeyCount(), rows, cols, d.KeyImageFormat().Codec, d.ID())
	}
}
