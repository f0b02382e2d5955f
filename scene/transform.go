// Package scene holds the components and systems that make up a rendered
// scene: transforms with parenting, cameras, materials, renderers and the
// behaviour bindings that drive entities each frame.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/playpark/ecs"
	"github.com/plus3/playpark/logger"
)

// Transform places an entity in the world. Position, rotation and scale are
// local to the parent; the world matrix is resolved once per frame by the
// TransformSystem, parents before children.
type Transform struct {
	Parent ecs.EntityId

	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3

	local      mgl32.Mat4
	localDirty bool

	world mgl32.Mat4
	epoch uint64
}

// NewTransform creates an identity transform with no parent
func NewTransform() Transform {
	return Transform{
		rotation:   mgl32.QuatIdent(),
		scale:      mgl32.Vec3{1, 1, 1},
		local:      mgl32.Ident4(),
		world:      mgl32.Ident4(),
		localDirty: false,
	}
}

// SetLocalPosition sets the position relative to the parent
func (t *Transform) SetLocalPosition(x, y, z float32) {
	t.position = mgl32.Vec3{x, y, z}
	t.localDirty = true
}

// LocalPosition returns the position relative to the parent
func (t *Transform) LocalPosition() mgl32.Vec3 {
	return t.position
}

// Translate moves the transform by the given local-space offset
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.position = t.position.Add(delta)
	t.localDirty = true
}

// SetLocalRotation sets the rotation from euler angles in degrees, applied
// in X, Y, Z order
func (t *Transform) SetLocalRotation(xDeg, yDeg, zDeg float32) {
	t.rotation = mgl32.AnglesToQuat(
		mgl32.DegToRad(xDeg), mgl32.DegToRad(yDeg), mgl32.DegToRad(zDeg),
		mgl32.XYZ)
	t.localDirty = true
}

// LocalRotation returns the rotation quaternion
func (t *Transform) LocalRotation() mgl32.Quat {
	return t.rotation
}

// Rotate applies an additional rotation, in degrees, about the given local
// axis
func (t *Transform) Rotate(deg float32, axis mgl32.Vec3) {
	t.rotation = t.rotation.Mul(mgl32.QuatRotate(mgl32.DegToRad(deg), axis)).Normalize()
	t.localDirty = true
}

// RotateWorld applies an additional rotation, in degrees, about the given
// parent-space axis
func (t *Transform) RotateWorld(deg float32, axis mgl32.Vec3) {
	t.rotation = mgl32.QuatRotate(mgl32.DegToRad(deg), axis).Mul(t.rotation).Normalize()
	t.localDirty = true
}

// SetLocalScale sets the per-axis scale
func (t *Transform) SetLocalScale(x, y, z float32) {
	t.scale = mgl32.Vec3{x, y, z}
	t.localDirty = true
}

// LocalScale returns the per-axis scale
func (t *Transform) LocalScale() mgl32.Vec3 {
	return t.scale
}

// Local returns the local matrix, rebuilding it if a setter ran since the
// last call
func (t *Transform) Local() mgl32.Mat4 {
	if t.localDirty {
		t.local = mgl32.Translate3D(t.position.X(), t.position.Y(), t.position.Z()).
			Mul4(t.rotation.Mat4()).
			Mul4(mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z()))
		t.localDirty = false
	}
	return t.local
}

// World returns the world matrix resolved by the most recent
// ResolveTransforms pass
func (t *Transform) World() mgl32.Mat4 {
	return t.world
}

// NormalMatrix returns the inverse-transpose of the world matrix's upper
// 3x3, for transforming normals under non-uniform scale
func (t *Transform) NormalMatrix() mgl32.Mat3 {
	return t.world.Mat3().Inv().Transpose()
}

// ResolveTransforms recomputes world matrices for every transform in the
// store, resolving each parent before its children regardless of store
// order. A parent chain that loops back on itself is broken at the point of
// re-entry and logged; the offending transform resolves as a root.
func ResolveTransforms(w *ecs.World, epoch uint64) {
	store := ecs.StoreFor[Transform](w)
	visiting := make(map[ecs.EntityId]bool)

	var resolve func(id ecs.EntityId, t *Transform) mgl32.Mat4
	resolve = func(id ecs.EntityId, t *Transform) mgl32.Mat4 {
		if t.epoch == epoch {
			return t.world
		}

		parentWorld := mgl32.Ident4()
		if t.Parent != ecs.Nil {
			switch {
			case visiting[id]:
				logger.Logf("scene", "transform parent cycle at entity %d, resolving as root", id.Index())
			case !w.Alive(t.Parent):
				t.Parent = ecs.Nil
			default:
				if parent := store.Get(t.Parent); parent != nil {
					visiting[id] = true
					parentWorld = resolve(t.Parent, parent)
					delete(visiting, id)
				}
			}
		}

		t.world = parentWorld.Mul4(t.Local())
		t.epoch = epoch
		return t.world
	}

	for id, t := range store.All() {
		resolve(id, t)
	}
}
