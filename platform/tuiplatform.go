package platform

import (
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	a "lautenbacher.net/pmlicht/animation"
	c "lautenbacher.net/pmlicht/config"
	"lautenbacher.net/pmlicht/logging"
)

// TUIPlatform simulates the strip in the terminal: a two-row colored
// bar per pixel, with the application log below it. Used whenever the
// program does not run on the real hardware.
type TUIPlatform struct {
	conf         *c.Config
	tviewapp     *tview.Application
	intro        *tview.TextView
	ledDisplay   *tview.TextView
	logView      *tview.TextView
	ossignalChan chan os.Signal
	logFlushOnce sync.Once

	mu    sync.Mutex
	frame []a.Led
}

func NewTUIPlatform(conf *c.Config, ossignalchan chan os.Signal) *TUIPlatform {
	return &TUIPlatform{
		conf:         conf,
		ossignalChan: ossignalchan,
		frame:        make([]a.Led, conf.Display.LedsTotal),
	}
}

func (s *TUIPlatform) Start() error {
	s.tviewapp = tview.NewApplication()

	s.intro = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	s.intro.SetText("Hit [#ff0000]q[-] to exit, [#ff0000]Up/Down[-] to scroll logs")
	s.intro.SetBorder(true).SetTitle(" PMLICHT Simulation ").SetTitleColor(tcell.ColorLightBlue)
	s.intro.SetBackgroundColor(tcell.NewRGBColor(20, 20, 20))

	s.ledDisplay = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	s.ledDisplay.SetBorder(true)
	s.ledDisplay.SetBackgroundColor(tcell.NewRGBColor(30, 30, 30))

	s.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetChangedFunc(func() {
			s.logView.ScrollToEnd()
			s.tviewapp.Draw()
		})
	s.logView.SetBorder(true).SetTitle(" Logs ").SetTitleColor(tcell.ColorLightBlue)
	s.logView.SetBackgroundColor(tcell.NewRGBColor(40, 40, 40))

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(s.intro, 3, 0, false).
		AddItem(s.ledDisplay, 4, 0, false).
		AddItem(s.logView, 0, 1, true)

	// Flush buffered logs into the log pane after the first draw.
	s.tviewapp.SetAfterDrawFunc(func(screen tcell.Screen) {
		s.logFlushOnce.Do(func() {
			logging.SetOutput(tview.ANSIWriter(s.logView))
		})
	})

	s.tviewapp.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			s.ossignalChan <- os.Interrupt
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				s.ossignalChan <- os.Interrupt
				return nil
			}
		case tcell.KeyUp:
			row, col := s.logView.GetScrollOffset()
			s.logView.ScrollTo(row-1, col)
			return nil
		case tcell.KeyDown:
			row, col := s.logView.GetScrollOffset()
			s.logView.ScrollTo(row+1, col)
			return nil
		}
		return event
	})

	go func() {
		if err := s.tviewapp.SetRoot(layout, true).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
			s.ossignalChan <- os.Interrupt
		}
	}()
	return nil
}

func (s *TUIPlatform) Stop() {
	if s.tviewapp != nil {
		s.tviewapp.Stop()
	}
}

// DisplayFrame copies the frame and queues a redraw of the strip pane.
func (s *TUIPlatform) DisplayFrame(frame []a.Led) error {
	s.mu.Lock()
	copy(s.frame, frame)
	s.mu.Unlock()
	s.tviewapp.QueueUpdateDraw(s.drawStrip)
	return nil
}

// drawStrip redraws the LED pane. Must be called on the TUI thread via
// QueueUpdateDraw.
func (s *TUIPlatform) drawStrip() {
	s.mu.Lock()
	frame := make([]a.Led, len(s.frame))
	copy(frame, s.frame)
	s.mu.Unlock()

	var top, bottom strings.Builder
	top.WriteString(" ")
	bottom.WriteString(" ")
	for _, led := range frame {
		if led.IsEmpty() {
			top.WriteString(" ")
			bottom.WriteString(" ")
			continue
		}
		color := scaledColor(led)
		top.WriteString(color)
		bottom.WriteString(color)
		topChar, bottomChar := blockChars(led)
		top.WriteString(topChar)
		top.WriteString("[-]")
		bottom.WriteString(bottomChar)
		bottom.WriteString("[-]")
	}
	s.ledDisplay.SetText(top.String() + "\n" + bottom.String())
}

// blockChars picks the two-row bar representation for the pixel's
// overall intensity.
func blockChars(led a.Led) (string, string) {
	value := (int(led.Red) + int(led.Green) + int(led.Blue) + int(led.White)) / 4
	switch {
	case value <= 32:
		return " ", "▂"
	case value <= 64:
		return " ", "▄"
	case value <= 96:
		return " ", "▆"
	case value <= 128:
		return " ", "█"
	case value <= 160:
		return "▂", "█"
	case value <= 192:
		return "▄", "█"
	case value <= 224:
		return "▆", "█"
	default:
		return "█", "█"
	}
}

// scaledColor maps the pixel to a full-brightness terminal color; the
// intensity is carried by the bar height, not the color value. The
// white channel brightens all three components evenly.
func scaledColor(led a.Led) string {
	red := float64(led.Red) + float64(led.White)
	green := float64(led.Green) + float64(led.White)
	blue := float64(led.Blue) + float64(led.White)

	maxColor := math.Max(red, math.Max(green, blue))
	if maxColor == 0 {
		return "[#000000]"
	}
	factor := 255 / maxColor
	return fmt.Sprintf("[#%02x%02x%02x]",
		byte(math.Min(red*factor, 255)),
		byte(math.Min(green*factor, 255)),
		byte(math.Min(blue*factor, 255)))
}
