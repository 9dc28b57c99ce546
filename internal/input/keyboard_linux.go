//go:build linux

package input

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyEsc       = 1
	keyQ         = 16
	keyEnter     = 28
	keyM         = 50
	keyKpEnter   = 96
	keyUp        = 103
	keyLeft      = 105
	keyRight     = 106
	keyDown      = 108
	keyBackspace = 14
)

// Keyboard reads Linux evdev devices under /dev/input/event* and decodes
// key presses into navigation events. Best-effort: devices that cannot be
// opened are skipped.
type Keyboard struct {
	log    *zap.Logger
	ch     chan Event
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewKeyboard(log *zap.Logger) *Keyboard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Keyboard{log: log, ch: make(chan Event, 8)}
}

func (k *Keyboard) Events() <-chan Event { return k.ch }

func (k *Keyboard) Start(ctx context.Context) error {
	ctx, k.cancel = context.WithCancel(ctx)

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		k.log.Info("no evdev devices found, keyboard input disabled")
		return nil
	}

	for _, path := range paths {
		p := path
		k.wg.Add(1)
		go func() {
			defer k.wg.Done()
			k.readDevice(ctx, p)
		}()
	}
	return nil
}

func (k *Keyboard) Stop() error {
	if k.cancel != nil {
		k.cancel()
	}
	k.wg.Wait()
	close(k.ch)
	return nil
}

func (k *Keyboard) readDevice(ctx context.Context, path string) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})
	eventSize := tvSize + 2 + 2 + 4

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}

		for off := 0; off+eventSize <= n; off += eventSize {
			rec := buf[off : off+eventSize]
			typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
			code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
			value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
			if typ != evKey || value != 1 {
				continue
			}
			if ev, ok := decodeKey(code); ok {
				k.emit(ev)
			}
		}
	}
}

func decodeKey(code uint16) (Event, bool) {
	switch code {
	case keyUp:
		return Up, true
	case keyDown:
		return Down, true
	case keyLeft:
		return Left, true
	case keyRight:
		return Right, true
	case keyEnter, keyKpEnter:
		return Confirm, true
	case keyM:
		return Menu, true
	case keyEsc, keyBackspace:
		return Back, true
	case keyQ:
		return Exit, true
	}
	return "", false
}

// emit drops the event when the channel is full rather than blocking a
// device reader.
func (k *Keyboard) emit(ev Event) {
	select {
	case k.ch <- ev:
	default:
		k.log.Debug("input event dropped", zap.String("event", string(ev)))
	}
}
