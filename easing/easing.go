package main

import (
	"strings"
	"sync"
	"time"

	"github.com/256dpi/max-go"
	"github.com/kr/pretty"

	"github.com/256dpi/max-easing/curve"
	"github.com/256dpi/max-easing/host"
	"github.com/256dpi/max-easing/preset"
	"github.com/256dpi/max-easing/tween"
	"github.com/256dpi/max-easing/utils"
)

type object struct {
	in      *max.Inlet
	out     *max.Outlet
	state   *max.Outlet
	done    *max.Outlet
	tween   *tween.Tween[float64]
	driver  *host.Driver
	opts    tween.Options
	presets preset.Set
	mutex   sync.Mutex
}

func (o *object) Init(obj *max.Object, args []max.Atom) bool {
	// args: options, preset file

	// add inlet and outlets
	o.in = obj.Inlet(max.Any, "start, bang, tick, time, stop, options, preset", true)
	o.out = obj.Outlet(max.Float, "current value")
	o.state = obj.Outlet(max.Int, "state")
	o.done = obj.Outlet(max.Bang, "bang when finished")

	// set default options
	o.opts = tween.DefaultOptions()

	// split arguments
	str, file := preset.Args(texts(args))

	// get options
	if str != "" {
		opts, err := preset.Parse(str)
		if err != nil {
			max.Error("easing: %s", err.Error())
		} else {
			o.opts = opts
		}
	}

	// get presets
	if file != "" {
		set, err := preset.Load(file)
		if err != nil {
			max.Error("easing: %s", err.Error())
		} else {
			o.presets = set
		}
	}

	// create tween and driver
	o.tween = tween.NewFloat()
	o.driver = host.NewDriver(0)
	o.driver.Scheduler.Register(o.tween)

	// emit values
	o.tween.OnStarted(func() {
		o.state.Int(int64(o.tween.State()))
	})
	o.tween.OnValueChanged(func(value float64) {
		o.out.Float(value)
	})
	o.tween.OnFinished(func() {
		o.state.Int(int64(tween.Finished))
		o.done.Bang()
	})
	o.tween.OnStopped(func() {
		o.state.Int(int64(tween.Stopped))
	})

	return true
}

func (o *object) Handle(_ int, msg string, data []max.Atom) {
	// acquire mutex
	o.mutex.Lock()
	defer o.mutex.Unlock()

	// handle message
	switch msg {
	case "start", "list":
		// start from and to values
		if len(data) < 2 {
			max.Error("easing: expected from and to values")
			return
		}
		o.start(utils.Float(data[0]), utils.Float(data[1]), data[2:])
	case "int", "float":
		// start from current value
		if len(data) > 0 {
			o.start(o.tween.Value(), utils.Float(data[0]), nil)
		}
	case "bang":
		// advance with measured time
		o.driver.Tick()
	case "tick":
		// advance with provided time
		if len(data) > 0 {
			o.driver.Advance(utils.Float(data[0]))
		}
	case "time":
		// seek
		if len(data) > 0 {
			o.tween.SetTime(utils.Float(data[0]))
		}
	case "stop":
		// stop
		o.tween.Stop()
	case "reset":
		// reset clock
		o.driver.Clock.Reset()
	case "smooth":
		// set clock smoothing
		if len(data) > 0 {
			halfLife := time.Duration(utils.Int(data[0])) * time.Millisecond
			o.driver.Clock = host.NewClock(halfLife)
		}
	case "options":
		// apply options
		opts, err := preset.Apply(o.opts, join(data))
		if err != nil {
			max.Error("easing: %s", err.Error())
			return
		}
		o.opts = opts
	case "preset":
		// apply preset
		if len(data) > 0 {
			opts, ok := o.presets.Get(utils.String(data[0]))
			if !ok {
				max.Error("easing: unknown preset %q", utils.String(data[0]))
				return
			}
			o.opts = opts
		}
	case "dump":
		// log state
		max.Log("easing: %s", pretty.Sprint(map[string]interface{}{
			"state":    o.tween.State().String(),
			"value":    o.tween.Value(),
			"begin":    o.tween.Begin(),
			"target":   o.tween.Target(),
			"elapsed":  o.tween.Elapsed(),
			"duration": o.tween.Duration(),
			"delay":    o.tween.Delay(),
			"curve":    o.tween.Curve().String(),
			"options":  o.opts,
		}))
	default:
		max.Error("easing: unknown message %q", msg)
	}
}

func (o *object) start(from, to float64, extra []max.Atom) {
	// copy options
	opts := o.opts

	// args: duration, curve, delay
	if len(extra) > 0 {
		opts.Duration = utils.Float(extra[0])
	}
	if len(extra) > 1 {
		opts.Curve = curve.Parse(utils.String(extra[1]))
	}
	if len(extra) > 2 {
		opts.Delay = utils.Float(extra[2])
	}

	// restart clock
	o.driver.Clock.Reset()
	o.driver.Clock.Tick()

	// start tween
	o.tween.StartWith(from, to, opts)
}

func (o *object) Free() {
	// acquire mutex
	o.mutex.Lock()
	defer o.mutex.Unlock()

	// release tween
	o.driver.Scheduler.Clear()
}

func texts(atoms []max.Atom) []string {
	list := make([]string, 0, len(atoms))
	for _, atom := range atoms {
		list = append(list, utils.String(atom))
	}
	return list
}

func join(atoms []max.Atom) string {
	return strings.Join(texts(atoms), " ")
}

func init() {
	max.Register("easing", &object{})
}

func main() {
	// not called
}
