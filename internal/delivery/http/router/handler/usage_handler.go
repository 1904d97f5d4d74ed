package handler

import (
	"cryofood/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const rootNotice = "This server does not serve web pages. Use the POST API endpoints."

// Usage text served on GET for each endpoint.
const (
	UsageCheckUser = "Verifies credentials. POST [username] and [password]. " +
		`Returns {"status":"success"} when they are valid.`
	UsageGetFood = "Lists the frozen food inventory. POST [username] and [password]. " +
		`Returns {"status":"success","content":[{"id":1,"name":"lasagna","category":"pasta","createdAt":"..."}]}.`
	UsageAddFood = "Adds food to the freezer. POST [username], [password], [food-name] and optionally [food-category]. " +
		`Returns {"status":"success"}.`
	UsageRemFood = "Removes food from the freezer. POST [username], [password] and [fid]. " +
		`Returns {"status":"success"}.`
	UsageGetUsers = "Lists the accounts. POST [username] and [password]. " +
		`Returns {"status":"success","content":["admin"]}.`
	UsageChangePw = "Changes an account password. POST [username], [password], [user-username] and [user-password]. " +
		`Returns {"status":"success"}.`
	UsageAddUser = "Creates an account. POST [username], [password], [user-username] and [user-password]. " +
		`Returns {"status":"success"}.`
	UsageDelUser = "Deletes an account other than your own. POST [username], [password] and [target-username]. " +
		`Returns {"status":"success"}.`
)

// Root handles GET /.
func Root(c echo.Context) error {
	return response.Usage(c, rootNotice)
}

// Usage returns a handler answering text.
func Usage(text string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return response.Usage(c, text)
	}
}
