package http

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// pages maps routes to the HTML files of the admin front end. The login page
// is reachable from the root, /login and its own filename.
var pages = map[string]string{
	"/":               "Dangnhap.html",
	"/login":          "Dangnhap.html",
	"/Dangnhap.html":  "Dangnhap.html",
	"/Thuchi.html":    "Thuchi.html",
	"/goimon.html":    "goimon.html",
	"/nhanvien.html":  "nhanvien.html",
	"/khachhang.html": "khachhang.html",
	"/danhmuc.html":   "danhmuc.html",
	"/Thucdon.html":   "Thucdon.html",
}

// RegisterPages mounts the named page routes and a general static mount for
// assets (css, js, images) under dir.
func RegisterPages(app *fiber.App, dir string) {
	for route, file := range pages {
		app.Get(route, servePage(dir, file))
	}
	app.Static("/", dir)
}

func servePage(dir, file string) fiber.Handler {
	path := filepath.Join(dir, file)
	return func(c *fiber.Ctx) error {
		return c.SendFile(path)
	}
}
