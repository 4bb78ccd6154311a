package ui

import "ytpick/internal/progress"

type updateMsg struct {
	U progress.Update
}

type logMsg struct {
	L progress.Log
}

type doneMsg struct {
	OK  bool
	Err error
}
