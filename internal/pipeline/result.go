package pipeline

// BuildStatus is the terminal state of a collage build session.
type BuildStatus string

const (
	BuildStatusSuccess BuildStatus = "Success"
	BuildStatusSkipped BuildStatus = "Skipped"
	BuildStatusFailure BuildStatus = "Failure"
)

// BuildResult contains structured outputs from RunBuild.
type BuildResult struct {
	Status      BuildStatus
	SessionID   string
	OutputPath  string
	PreviewPath string
	Dimension   int
	TileSize    int
	EdgePixels  int // final collage width and height
	TileCount   int
}
