package theme

type Typography struct {
	Title      int32
	Body       int32
	Small      int32
	LineFactor float32
}

var Type = Typography{
	Title:      34,
	Body:       20,
	Small:      17,
	LineFactor: 1.5,
}
