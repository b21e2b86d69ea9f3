package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}

	m := q.ToMat4()
	id := Identity()
	if m != id {
		t.Errorf("identity quaternion matrix = %v, want identity", m)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatMulOrder(t *testing.T) {
	qx := QuatFromAxisAngle(Vec3{X: 1}, Radians(90))
	qz := QuatFromAxisAngle(Vec3{Z: 1}, Radians(90))

	// qz.Mul(qx) rotates about X first: (0,1,0) -> (0,0,1) -> (0,0,1)
	p := qz.Mul(qx).ToMat4().TransformVec3(Vec3{0, 1, 0})
	if abs(p.X) > 0.001 || abs(p.Y) > 0.001 || abs(p.Z-1) > 0.001 {
		t.Errorf("qz*qx applied to +Y = %v, want (0, 0, 1)", p)
	}

	// qx.Mul(qz) rotates about Z first: (0,1,0) -> (-1,0,0) -> (-1,0,0)
	p = qx.Mul(qz).ToMat4().TransformVec3(Vec3{0, 1, 0})
	if abs(p.X+1) > 0.001 || abs(p.Y) > 0.001 || abs(p.Z) > 0.001 {
		t.Errorf("qx*qz applied to +Y = %v, want (-1, 0, 0)", p)
	}
}
