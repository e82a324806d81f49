// Package fadecandy streams frame sequences to an Open Pixel Control
// server, such as the daemon driving a fadecandy LED controller.
package fadecandy

import (
	"errors"
	"time"

	"github.com/kellydunn/go-opc"

	"github.com/BeatGlow/ybt"
	"github.com/BeatGlow/ybt/pixel"
)

// MaxPixels is the largest number of pixels that fits a single OPC
// message, whose payload length field is 16 bits wide.
const MaxPixels = 0xffff / 3

// Errors.
var (
	ErrFrameSize     = errors.New("fadecandy: frame does not fit an OPC message")
	ErrEmptySequence = errors.New("fadecandy: empty frame sequence")
)

// Client is a connection to an OPC server.
type Client struct {
	oc     *opc.Client
	server string
}

// Dial connects to the OPC server at addr (host:port).
func Dial(addr string) (*Client, error) {
	oc := opc.NewClient()
	if err := oc.Connect("tcp", addr); err != nil {
		return nil, err
	}
	return &Client{oc: oc, server: addr}, nil
}

func (c *Client) String() string {
	return "opc " + c.server
}

// Send transmits a single frame as a set-pixel-colors message on the
// given OPC channel. Pixels are sent in row-major order, quantized to
// 8 bits per channel.
func (c *Client) Send(frame *pixel.RGBImage, channel uint8) error {
	b := frame.Bounds()
	n := b.Dx() * b.Dy()
	if n > MaxPixels {
		return ErrFrameSize
	}

	m := opc.NewMessage(channel)
	m.SetLength(uint16(n * 3))

	var i int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := frame.RGBAt(x, y).NRGBA()
			m.SetPixelColor(i, v.R, v.G, v.B)
			i++
		}
	}
	return c.oc.Send(m)
}

// Play streams the sequence at its frame rate on the given OPC channel,
// looping it the given number of times; zero loops until the first send
// error. Play returns after the last frame of the last loop was sent.
func (c *Client) Play(seq *ybt.Sequence, channel uint8, loops int) error {
	if seq == nil || seq.Len() == 0 {
		return ErrEmptySequence
	}
	if !(seq.Rate > 0) {
		return ybt.ErrRate
	}

	ticker := time.NewTicker(time.Duration(float64(time.Second) / seq.Rate))
	defer ticker.Stop()

	for played := 0; loops <= 0 || played < loops; played++ {
		for _, frame := range seq.Frames {
			if err := c.Send(frame, channel); err != nil {
				return err
			}
			<-ticker.C
		}
	}
	return nil
}
