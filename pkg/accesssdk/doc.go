/*
Package accesssdk provides a client SDK for the access service.

# Overview

The access service answers two questions for a user: which permission codes
they hold and which departments' rows they may see. It also serves the menu
tree and UI routes derived from those codes, and the admin API that manages
departments, menus, roles and users.

# SDKClient vs Session

  - SDKClient: public endpoints (health, bootstrap) and Session creation
  - Session: authenticated endpoints using a bearer token issued by the
    identity provider

A typical session reads the caller's effective access first:

	client := accesssdk.NewSDKClient("https://access.example.com")
	session := client.WithToken(accessToken)

	me, err := session.Me(ctx)
	routes, err := session.MyRoutes(ctx)
	users, err := session.ListUsers(ctx, accesssdk.UserQuery{Page: 1, Size: 20})

# Error Handling

Every non-2xx response is returned as an *APIError. Compare against the
predefined errors with errors.Is:

	_, err := session.GetRecord(ctx, id)
	if errors.Is(err, accesssdk.ErrNotFound) {
		// missing, or outside the caller's data scope
	}

Validation failures carry per-field messages in APIError.Details.
*/
package accesssdk
