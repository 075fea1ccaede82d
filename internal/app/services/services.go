package services

// Services defined in this package:
// - PlannerService: enumerates clash-free schedules for a course selection
// - CatalogueService: catalogue browsing, status and refresh
