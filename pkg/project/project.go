package project

const (
	Name    = "mathline"
	Version = "0.1.0"
)
