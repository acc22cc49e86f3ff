// @title           Campus Placement Portal API
// @version         1.0
// @description     Backend for the campus placement portal: student KYC profiles, job postings, eligibility-gated applications and placement tracking.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import "placement_backend/internal/app"

func main() {
	app.Run()
}
