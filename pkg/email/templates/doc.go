// Package templates holds the HTML email bodies rendered with templ.
package templates
