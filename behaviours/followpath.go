package behaviours

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/playpark/ecs"
	"github.com/plus3/playpark/scene"
)

// FollowPath moves its entity along a closed loop of waypoints at constant
// speed. When the last waypoint is reached the path wraps to the first. The
// balloons drift around the playground on opposite-phase loops of the same
// rectangle.
type FollowPath struct {
	Waypoints []mgl32.Vec3
	Speed     float32

	target int
}

// NewFollowPath creates a path follower aimed at the first waypoint
func NewFollowPath(speed float32, waypoints ...mgl32.Vec3) *FollowPath {
	return &FollowPath{
		Waypoints: waypoints,
		Speed:     speed,
	}
}

// Target returns the index of the waypoint currently moved toward
func (f *FollowPath) Target() int {
	return f.target
}

func (f *FollowPath) Update(ctx *scene.BehaviourContext) {
	if len(f.Waypoints) == 0 || f.Speed <= 0 {
		return
	}

	tr := ecs.Get[scene.Transform](ctx.World, ctx.Entity)
	if tr == nil {
		return
	}

	pos := tr.LocalPosition()
	step := f.Speed * ctx.DeltaTime

	// consume the step across as many waypoints as it covers, so a long
	// frame cannot overshoot a corner
	for step > 0 {
		f.target = f.target % len(f.Waypoints)
		to := f.Waypoints[f.target].Sub(pos)
		dist := to.Len()

		if dist <= step {
			pos = f.Waypoints[f.target]
			step -= dist
			f.target = (f.target + 1) % len(f.Waypoints)

			// all waypoints coincide with the position
			if step > 0 && samePoint(pos, f.Waypoints) {
				break
			}
			continue
		}

		pos = pos.Add(to.Mul(step / dist))
		step = 0
	}

	tr.SetLocalPosition(pos.X(), pos.Y(), pos.Z())
}

func samePoint(pos mgl32.Vec3, waypoints []mgl32.Vec3) bool {
	for _, w := range waypoints {
		if w != pos {
			return false
		}
	}
	return true
}
