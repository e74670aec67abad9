// Package contact implements the blog's contact endpoint.
//
// A POST carrying an Inquiry (JSON or form encoded) is validated and
// forwarded as one email to the owner:
//
//	From / Reply-To: the visitor's address
//	To:              Config.OwnerEmail
//	Subject:         New contact from <name>: <subject>
//	Body:            inquiryDetails as text, plus an HTML rendering
//
// Responses are {"success":true} on delivery and
// {"success":false,"message":"..."} otherwise: 400 for invalid input,
// 500 for missing mail configuration or transport failures. Other methods
// get an empty 405 with Allow: POST.
package contact
