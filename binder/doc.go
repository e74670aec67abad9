// Package binder decodes HTTP request bodies into typed request structs.
//
// JSON handles application/json bodies and Form handles urlencoded and
// multipart bodies. Each one steps aside with ErrBinderNotApplicable when
// the request carries the other's media type, so both can be registered on
// the same endpoint and the contact form works with or without JavaScript.
package binder
