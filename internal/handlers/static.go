package handlers

import (
	"net/http"
	"path"
)

// StaticHandler serves the frontend assets from dir, falling back to the JSON
// 404 body for anything that is not a real file. Mounted as the router's
// catch-all so unmatched API routes get the same 404 shape.
func StaticHandler(dir string) http.HandlerFunc {
	root := http.Dir(dir)
	fileServer := http.FileServer(root)

	return func(w http.ResponseWriter, r *http.Request) {
		p := path.Clean("/" + r.URL.Path)
		if p == "/" {
			p = "/index.html"
		}

		f, err := root.Open(p)
		if err != nil {
			NotFound(w, r)
			return
		}
		info, err := f.Stat()
		f.Close()
		if err != nil || info.IsDir() {
			NotFound(w, r)
			return
		}

		fileServer.ServeHTTP(w, r)
	}
}
