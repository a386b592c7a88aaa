// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier generation and session cookies.

# ID Generation

Poll and book IDs are NanoIDs (URL-safe alphabet):

	pollID, err := auth.GeneratePollID()  // 10 characters
	bookID, err := auth.GenerateBookID()  // 8 characters

# Sessions

There are no accounts. Each browser gets a random UUID session ID stored in
a long-lived cookie:

	id := auth.GenerateSessionID()
	http.SetCookie(w, auth.NewSessionCookie(id, secure))

The cookie is HttpOnly, SameSite=Lax and lives for ten years. Session IDs
identify voters so a browser can resume a draft ranking and so a completed
vote can be excluded later. ValidSessionID rejects cookie values that are
not UUIDs.
*/
package auth
