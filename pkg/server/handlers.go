package server

import (
	"booksite/handler"
)

type Handlers struct {
	Home     *handler.Home
	Auth     *handler.Auth
	Bookmark *handler.Bookmark
}
