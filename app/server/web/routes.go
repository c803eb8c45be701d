package web

import (
	"github.com/exgallery/galleryui/app/enum"
	"github.com/exgallery/galleryui/app/prefs"
)

// Route maps a URL pattern to a view. Path params are passed to the view as-is.
type Route struct {
	Pattern string
	View    enum.View
	Params  []string
	InNav   bool
}

// Routes is the route table of the UI.
var Routes = []Route{
	{Pattern: "/{$}", View: enum.ViewHome, InNav: true},
	{Pattern: "/data", View: enum.ViewData, InNav: true},
	{Pattern: "/sync", View: enum.ViewSync, InNav: true},
	{Pattern: "/favorites", View: enum.ViewFavorites, InNav: true},
	{Pattern: "/gallery/{gid}", View: enum.ViewGallery, Params: []string{"gid"}},
	{Pattern: "/gallery/{gid}/{token}/{page}", View: enum.ViewReader, Params: []string{"gid", "token", "page"}},
}

func viewMessage(v enum.View) string {
	switch v {
	case enum.ViewData:
		return prefs.MsgViewData
	case enum.ViewSync:
		return prefs.MsgViewSync
	case enum.ViewFavorites:
		return prefs.MsgViewFavorite
	case enum.ViewGallery:
		return prefs.MsgViewGallery
	case enum.ViewReader:
		return prefs.MsgViewReader
	default:
		return prefs.MsgViewHome
	}
}
