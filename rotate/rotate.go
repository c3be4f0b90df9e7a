package main

import (
	"sync"
	"time"

	"github.com/256dpi/max-go"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/256dpi/max-easing/curve"
	"github.com/256dpi/max-easing/host"
	"github.com/256dpi/max-easing/tween"
	"github.com/256dpi/max-easing/utils"
)

type object struct {
	in     *max.Inlet
	out    *max.Outlet
	done   *max.Outlet
	tween  *tween.Tween[mgl64.Quat]
	driver *host.Driver
	rot    mgl64.Quat
	mutex  sync.Mutex
}

func (o *object) Init(obj *max.Object, args []max.Atom) bool {
	// args: smoothing half-life in ms

	// add inlet and outlets
	o.in = obj.Inlet(max.Any, "rw, rx, ry, rz", true)
	o.out = obj.Outlet(max.List, "rw, rx, ry, rz")
	o.done = obj.Outlet(max.Bang, "bang when finished")

	// get driver
	o.driver = host.NewDriver(0)
	if len(args) > 0 {
		halfLife := time.Duration(utils.Int(args[0])) * time.Millisecond
		o.driver = host.NewDriver(halfLife)
	}

	// set identity
	o.rot = mgl64.QuatIdent()

	// create tween
	o.tween = tween.NewRotation()
	o.tween.OnValueChanged(func(rot mgl64.Quat) {
		o.rot = rot
		o.emit()
	})
	o.tween.OnFinished(func() {
		o.done.Bang()
	})
	o.driver.Scheduler.Register(o.tween)

	return true
}

func (o *object) Handle(_ int, msg string, data []max.Atom) {
	// acquire mutex
	o.mutex.Lock()
	defer o.mutex.Unlock()

	// handle message
	switch msg {
	case "rotation":
		// set rotation
		if len(data) != 4 {
			max.Error("rotate: invalid arguments")
			return
		}
		o.rot = quat(data)
		o.emit()
	case "rotate", "list":
		// args: rw, rx, ry, rz, duration, curve, delay
		if len(data) < 4 {
			max.Error("rotate: invalid arguments")
			return
		}
		opts := tween.DefaultOptions()
		if len(data) > 4 {
			opts.Duration = utils.Float(data[4])
		}
		if len(data) > 5 {
			opts.Curve = curve.Parse(utils.String(data[5]))
		}
		if len(data) > 6 {
			opts.Delay = utils.Float(data[6])
		}

		// restart clock
		o.driver.Clock.Reset()
		o.driver.Clock.Tick()

		// start tween
		o.tween.StartWith(o.rot, quat(data), opts)
	case "bang":
		// advance with measured time
		o.driver.Tick()
	case "tick":
		// advance with provided time
		if len(data) > 0 {
			o.driver.Advance(utils.Float(data[0]))
		}
	case "stop":
		// stop
		o.tween.Stop()
	default:
		max.Error("rotate: unknown message %q", msg)
	}
}

func (o *object) emit() {
	o.out.List([]max.Atom{o.rot.W, o.rot.X(), o.rot.Y(), o.rot.Z()})
}

func (o *object) Free() {
	// acquire mutex
	o.mutex.Lock()
	defer o.mutex.Unlock()

	// release tween
	o.driver.Scheduler.Clear()
}

func quat(data []max.Atom) mgl64.Quat {
	rw := utils.Float(data[0])
	rx := utils.Float(data[1])
	ry := utils.Float(data[2])
	rz := utils.Float(data[3])
	return mgl64.Quat{W: rw, V: mgl64.Vec3{rx, ry, rz}}.Normalize()
}

func init() {
	max.Register("rotate", &object{})
}

func main() {
	// not called
}
