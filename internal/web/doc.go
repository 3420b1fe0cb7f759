// Package web serves the registration form, the profile name editor and the
// evaluation JSON API on top of package signup.
//
// HTML endpoints answer Datastar requests with server-sent element patches
// and plain requests with HTML. Every request carries the current field
// values as signals or form values, so handlers keep no per-user state.
//
//	h := web.NewHandler(web.WithLogger(log), web.WithScriptURL(url))
//	http.ListenAndServe(":8080", web.NewRouter(h))
package web
