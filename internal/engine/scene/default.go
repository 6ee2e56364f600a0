package scene

// cubePositions are the floor-level cube placements.
var cubePositions = [][3]float32{
	{-3.0, -4.5, -3.0},
	{-1.5, -4.5, -2.0},
	{0.0, -4.5, -1.5},
	{1.5, -4.5, -1.0},
	{3.0, -4.5, -0.5},
	{-3.0, -4.5, 0.5},
	{-1.5, -4.5, 1.0},
	{0.0, -4.5, 1.5},
	{1.5, -4.5, 2.0},
	{-1.0, -4.5, 0.0},
	{3.0, -4.5, 2.5},
}

// DefaultManifest returns the built-in room: 11 leather cubes on the floor,
// a floor, a ceiling and four walls, two point lights, a spot light, a
// directional light and the six room bounds.
func DefaultManifest() *Manifest {
	m := &Manifest{
		Models: []ModelSpec{
			{
				Kind: KindCube,
				Mesh: "cube.obj",
				Textures: map[string]string{
					SlotDiffuse:  "Leather_Diffuse.jpg",
					SlotNormal:   "Leather_Normal.jpg",
					SlotSpecular: "Leather_Specular.jpg",
				},
				Material: Material{Ka: 0.2, Kd: 0.7, Ks: 1.0, Ns: 20.0},
			},
			{
				Kind: KindFloor,
				Mesh: "plane.obj",
				Textures: map[string]string{
					SlotDiffuse:  "Floor_Diffuse.jpg",
					SlotNormal:   "Floor_Normal.jpg",
					SlotSpecular: "Floor_Specular.jpg",
				},
				Material: Material{Ka: 0.0, Kd: 0.7, Ks: 0.0, Ns: 20.2},
			},
			{
				Kind: KindCeiling,
				Mesh: "plane.obj",
				Textures: map[string]string{
					SlotDiffuse:  "OfficeCeiling_Diffuse.jpg",
					SlotNormal:   "OfficeCeiling_Normal.jpg",
					SlotSpecular: "OfficeCeiling_Specular.jpg",
				},
				Material: Material{Ka: 0.2, Kd: 0.5, Ks: 1.0, Ns: 20.0},
			},
			{
				Kind: KindWall,
				Mesh: "plane.obj",
				Textures: map[string]string{
					SlotDiffuse:  "OfficeWall_Diffuse.jpg",
					SlotNormal:   "OfficeWall_Normal.jpg",
					SlotSpecular: "OfficeWall_Specular.jpg",
				},
				Material: Material{Ka: 0.2, Kd: 1.0, Ks: 1.0, Ns: 20.0},
			},
		},
		LightMarker: "sphere.obj",
	}

	for _, pos := range cubePositions {
		m.Objects = append(m.Objects, ObjectSpec{
			Kind:     KindCube,
			Position: pos,
			Axis:     [3]float32{1, 1, 1},
			Scale:    [3]float32{0.3, 0.3, 0.3},
			Angle:    0,
		})
	}

	half := [3]float32{0.5, 0.5, 0.5}
	m.Objects = append(m.Objects,
		ObjectSpec{Kind: KindFloor, Position: [3]float32{0, -5, 0}, Axis: [3]float32{1, 0, 0}, Scale: half, Angle: 0},
		ObjectSpec{Kind: KindCeiling, Position: [3]float32{0, 2.75, 0}, Axis: [3]float32{1, 0, 0}, Scale: half, Angle: 180},
		// back, right, left, front
		ObjectSpec{Kind: KindWall, Position: [3]float32{0, -0.5, -5}, Axis: [3]float32{1, 0, 0}, Scale: half, Angle: 90},
		ObjectSpec{Kind: KindWall, Position: [3]float32{5, -0.5, 0}, Axis: [3]float32{0, 0, 1}, Scale: half, Angle: 90},
		ObjectSpec{Kind: KindWall, Position: [3]float32{-5, -0.5, 0}, Axis: [3]float32{0, 0, 1}, Scale: half, Angle: -90},
		ObjectSpec{Kind: KindWall, Position: [3]float32{0, -0.5, 5}, Axis: [3]float32{1, 0, 0}, Scale: half, Angle: -90},
	)

	white := [3]float32{1, 1, 1}
	m.Lights = []LightSpec{
		{Type: LightPoint, Position: [3]float32{2, 1, -2}, Colour: white, Constant: 1, Linear: 0.1, Quadratic: 0.02},
		{Type: LightPoint, Position: [3]float32{-2, 1, 2}, Colour: white, Constant: 1, Linear: 0.1, Quadratic: 0.02},
		{Type: LightSpot, Position: [3]float32{0, 2, 0}, Direction: [3]float32{0, -1, 0}, Colour: white,
			Constant: 1, Linear: 0.1, Quadratic: 0.02, Cone: 45},
		{Type: LightDirectional, Direction: [3]float32{0, -1, 0}, Colour: [3]float32{1, 1, 0}},
	}

	m.Bounds = []BoundSpec{
		{Name: "floor", Min: [3]float32{-5, -5, -5}, Max: [3]float32{5, -4.5, 5}},
		{Name: "ceiling", Min: [3]float32{-5, 2.5, -5}, Max: [3]float32{5, 3, 5}},
		{Name: "back wall", Min: [3]float32{-5, -4.5, -5}, Max: [3]float32{5, 2.5, -4.5}},
		{Name: "front wall", Min: [3]float32{-5, -4.5, 4.5}, Max: [3]float32{5, 2.5, 5}},
		{Name: "left wall", Min: [3]float32{-5, -4.5, -5}, Max: [3]float32{-4.5, 2.5, 5}},
		{Name: "right wall", Min: [3]float32{4.5, -4.5, -5}, Max: [3]float32{5, 2.5, 5}},
	}

	return m
}
