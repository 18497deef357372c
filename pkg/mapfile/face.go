package mapfile

import "github.com/go-gl/mathgl/mgl64"

// vec3 parses "x y z".
func (s *scanner) vec3() (mgl64.Vec3, error) {
	x, err := s.float64Lit()
	if err != nil {
		return mgl64.Vec3{}, err
	}
	if err := s.expectByte(' ', "' ' between vector components"); err != nil {
		return mgl64.Vec3{}, err
	}
	y, err := s.float64Lit()
	if err != nil {
		return mgl64.Vec3{}, err
	}
	if err := s.expectByte(' ', "' ' between vector components"); err != nil {
		return mgl64.Vec3{}, err
	}
	z, err := s.float64Lit()
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return mgl64.Vec3{x, y, z}, nil
}

// triangle parses "( x y z ) ( x y z ) ( x y z )".
func (s *scanner) triangle() ([3]mgl64.Vec3, error) {
	var tri [3]mgl64.Vec3

	if err := s.expectLiteral("( "); err != nil {
		return tri, err
	}
	p1, err := s.vec3()
	if err != nil {
		return tri, err
	}
	if err := s.expectLiteral(" ) ( "); err != nil {
		return tri, err
	}
	p2, err := s.vec3()
	if err != nil {
		return tri, err
	}
	if err := s.expectLiteral(" ) ( "); err != nil {
		return tri, err
	}
	p3, err := s.vec3()
	if err != nil {
		return tri, err
	}
	if err := s.expectLiteral(" )"); err != nil {
		return tri, err
	}

	tri[0], tri[1], tri[2] = p1, p2, p3
	return tri, nil
}

// face parses one face line:
//
//	( x1 y1 z1 ) ( x2 y2 z2 ) ( x3 y3 z3 ) TEXTURE [ ux uy uz offX ] [ vx vy vz offY ] rot scaleX scaleY
func (s *scanner) face() (Face, error) {
	tri, err := s.triangle()
	if err != nil {
		return Face{}, err
	}
	if err := s.expectByte(' ', "' ' after triangle"); err != nil {
		return Face{}, err
	}
	texName, err := s.token()
	if err != nil {
		return Face{}, err
	}
	if err := s.expectLiteral(" [ "); err != nil {
		return Face{}, err
	}
	axisU, err := s.vec3()
	if err != nil {
		return Face{}, err
	}
	if err := s.expectByte(' ', "' ' before U offset"); err != nil {
		return Face{}, err
	}
	offX, err := s.float64Lit()
	if err != nil {
		return Face{}, err
	}
	if err := s.expectLiteral(" ] [ "); err != nil {
		return Face{}, err
	}
	axisV, err := s.vec3()
	if err != nil {
		return Face{}, err
	}
	if err := s.expectByte(' ', "' ' before V offset"); err != nil {
		return Face{}, err
	}
	offY, err := s.float64Lit()
	if err != nil {
		return Face{}, err
	}
	if err := s.expectLiteral(" ] "); err != nil {
		return Face{}, err
	}
	rotation, err := s.float64Lit()
	if err != nil {
		return Face{}, err
	}
	if err := s.expectByte(' ', "' ' before scale X"); err != nil {
		return Face{}, err
	}
	scaleX, err := s.float64Lit()
	if err != nil {
		return Face{}, err
	}
	if err := s.expectByte(' ', "' ' before scale Y"); err != nil {
		return Face{}, err
	}
	scaleY, err := s.float64Lit()
	if err != nil {
		return Face{}, err
	}

	return Face{
		Triangle:    tri,
		TextureName: texName,
		AxisU:       axisU,
		AxisV:       axisV,
		Offset:      mgl64.Vec2{offX, offY},
		Rotation:    rotation,
		Scale:       mgl64.Vec2{scaleX, scaleY},
	}, nil
}
