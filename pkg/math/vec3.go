// Package math provides the float32 vector and matrix types used for mesh geometry.
package math

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/chewxy/math32"
)

// Vec3 is a 3D vector or point with single-precision components.
type Vec3 struct {
	X, Y, Z float32
}

// Key is the raw bit pattern of a Vec3, usable as a map key.
// Two keys are equal only if every component is bit-identical, so
// +0 and -0 differ and identical NaNs match.
type Key [3]uint32

// Key returns the bit-exact key for v.
func (v Vec3) Key() Key {
	return Key{math.Float32bits(v.X), math.Float32bits(v.Y), math.Float32bits(v.Z)}
}

// Vec3 converts a key back to its vector.
func (k Key) Vec3() Vec3 {
	return Vec3{math.Float32frombits(k[0]), math.Float32frombits(k[1]), math.Float32frombits(k[2])}
}

// Equal reports whether v and other are bit-identical.
func (v Vec3) Equal(other Vec3) bool {
	return v.Key() == other.Key()
}

// Less orders vectors lexicographically by X, then Y, then Z.
// The order has no geometric meaning.
func (v Vec3) Less(other Vec3) bool {
	if v.X != other.X {
		return v.X < other.X
	}
	if v.Y != other.Y {
		return v.Y < other.Y
	}
	return v.Z < other.Z
}

// LessEqual reports v < other or v == other in the Less ordering.
func (v Vec3) LessEqual(other Vec3) bool {
	return !other.Less(v)
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector.
// A zero-length vector normalizes to the zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Min returns the component-wise minimum.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{math32.Min(v.X, other.X), math32.Min(v.Y, other.Y), math32.Min(v.Z, other.Z)}
}

// Max returns the component-wise maximum.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{math32.Max(v.X, other.X), math32.Max(v.Y, other.Y), math32.Max(v.Z, other.Z)}
}

// String formats v as "(x,y,z)".
func (v Vec3) String() string {
	return fmt.Sprintf("(%v,%v,%v)", v.X, v.Y, v.Z)
}

// ReadVec3 reads three little-endian float32 values in X, Y, Z order.
// It consumes exactly 12 bytes; short input returns io.EOF or io.ErrUnexpectedEOF.
func ReadVec3(r io.Reader) (Vec3, error) {
	var buf [12]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Vec3{}, err
	}
	return Vec3{
		X: math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])),
	}, nil
}

// WriteVec3 writes v as three little-endian float32 values.
func WriteVec3(w io.Writer, v Vec3) error {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(v.Z))
	_, err := w.Write(buf[:])
	return err
}
