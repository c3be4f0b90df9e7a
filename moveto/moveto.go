package main

import (
	"strings"
	"sync"

	"github.com/256dpi/max-go"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/kr/pretty"

	"github.com/256dpi/max-easing/host"
	"github.com/256dpi/max-easing/motion"
	"github.com/256dpi/max-easing/preset"
	"github.com/256dpi/max-easing/tween"
	"github.com/256dpi/max-easing/utils"
)

type object struct {
	in      *max.Inlet
	out     *max.Outlet
	done    *max.Outlet
	mover   *motion.Mover
	driver  *host.Driver
	opts    tween.Options
	presets preset.Set
	pos     mgl64.Vec3
	target  mgl64.Vec3
	mutex   sync.Mutex
}

func (o *object) Init(obj *max.Object, args []max.Atom) bool {
	// args: options, preset file

	// add inlet and outlets
	o.in = obj.Inlet(max.Any, "position, moveto, follow, target, bang, tick, stop, options, preset", true)
	o.out = obj.Outlet(max.List, "x, y, z")
	o.done = obj.Outlet(max.Bang, "bang when arrived")

	// set default options
	o.opts = tween.DefaultOptions()

	// split arguments
	str, file := preset.Args(texts(args))

	// get options
	if str != "" {
		opts, err := preset.Parse(str)
		if err != nil {
			max.Error("moveto: %s", err.Error())
		} else {
			o.opts = opts
		}
	}

	// get presets
	if file != "" {
		set, err := preset.Load(file)
		if err != nil {
			max.Error("moveto: %s", err.Error())
		} else {
			o.presets = set
		}
	}

	// create mover and driver
	o.mover = motion.New(func(pos mgl64.Vec3) {
		o.pos = pos
		o.out.List([]max.Atom{pos.X(), pos.Y(), pos.Z()})
	})
	o.mover.OnFinished(func() {
		o.done.Bang()
	})
	o.driver = host.NewDriver(0)
	o.driver.Scheduler.Register(o.mover)

	return true
}

func (o *object) Handle(_ int, msg string, data []max.Atom) {
	// acquire mutex
	o.mutex.Lock()
	defer o.mutex.Unlock()

	// handle message
	switch msg {
	case "position":
		// set start position of the next movement
		o.pos = vec3(data)
		o.out.List([]max.Atom{o.pos.X(), o.pos.Y(), o.pos.Z()})
	case "moveto", "list":
		// move to fixed target
		o.target = vec3(data)
		o.restart()
		o.mover.MoveTo(o.pos, o.target, o.opts)
	case "follow":
		// move to tracked target
		o.target = vec3(data)
		o.restart()
		o.mover.Follow(o.pos, func() mgl64.Vec3 {
			return o.target
		}, o.opts)
	case "target":
		// update tracked target
		o.target = vec3(data)
	case "bang":
		// advance with measured time
		o.driver.Tick()
	case "tick":
		// advance with provided time
		if len(data) > 0 {
			o.driver.Advance(utils.Float(data[0]))
		}
	case "stop":
		// stop movement
		o.mover.Stop()
	case "options":
		// apply options
		opts, err := preset.Apply(o.opts, strings.Join(texts(data), " "))
		if err != nil {
			max.Error("moveto: %s", err.Error())
			return
		}
		o.opts = opts
	case "preset":
		// apply preset
		if len(data) > 0 {
			opts, ok := o.presets.Get(utils.String(data[0]))
			if !ok {
				max.Error("moveto: unknown preset %q", utils.String(data[0]))
				return
			}
			o.opts = opts
		}
	case "dump":
		// log state
		max.Log("moveto: %s", pretty.Sprint(map[string]interface{}{
			"position": o.pos,
			"target":   o.target,
			"end":      o.mover.End(),
			"state":    o.mover.Progress().State().String(),
			"progress": o.mover.Progress().Progress(),
			"options":  o.opts,
		}))
	default:
		max.Error("moveto: unknown message %q", msg)
	}
}

func (o *object) restart() {
	// restart clock
	o.driver.Clock.Reset()
	o.driver.Clock.Tick()
}

func (o *object) Free() {
	// acquire mutex
	o.mutex.Lock()
	defer o.mutex.Unlock()

	// release mover
	o.driver.Scheduler.Clear()
}

func texts(atoms []max.Atom) []string {
	list := make([]string, 0, len(atoms))
	for _, atom := range atoms {
		list = append(list, utils.String(atom))
	}
	return list
}

func vec3(data []max.Atom) mgl64.Vec3 {
	var atoms []any
	for _, atom := range data {
		atoms = append(atoms, atom)
	}
	f := utils.Floats(atoms, 0, 3)
	return mgl64.Vec3{f[0], f[1], f[2]}
}

func init() {
	max.Register("moveto", &object{})
}

func main() {
	// not called
}
