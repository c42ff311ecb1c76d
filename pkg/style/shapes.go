package style

// BodyShape is the shape of the data modules.
type BodyShape string

const (
	BodySquare        BodyShape = "square"
	BodyDots          BodyShape = "dots"
	BodyRounded       BodyShape = "rounded"
	BodyExtraRounded  BodyShape = "extra-rounded"
	BodyClassy        BodyShape = "classy"
	BodyClassyRounded BodyShape = "classy-rounded"
)

func BodyShapes() []BodyShape {
	return []BodyShape{BodySquare, BodyDots, BodyRounded, BodyExtraRounded, BodyClassy, BodyClassyRounded}
}

// EyeFrameShape is the shape of the 7x7 outer ring of a finder pattern.
type EyeFrameShape string

const (
	EyeFrameSquare       EyeFrameShape = "square"
	EyeFrameRounded      EyeFrameShape = "rounded"
	EyeFrameExtraRounded EyeFrameShape = "extra-rounded"
)

func EyeFrameShapes() []EyeFrameShape {
	return []EyeFrameShape{EyeFrameSquare, EyeFrameRounded, EyeFrameExtraRounded}
}

// EyeBallShape is the shape of the 3x3 center of a finder pattern.
type EyeBallShape string

const (
	EyeBallSquare  EyeBallShape = "square"
	EyeBallRounded EyeBallShape = "rounded"
)

func EyeBallShapes() []EyeBallShape {
	return []EyeBallShape{EyeBallSquare, EyeBallRounded}
}
