package tui

import "github.com/notetaker/notetaker/models"

type signInDoneMsg struct {
	session models.Session
	err     error
}

type challengeMsg struct {
	challenge models.Challenge
	err       error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	noteID string
	err    error
}

type signedOutMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
