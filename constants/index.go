package constants

const (
	ERROR_INPUT                = "Invalid input data"
	DATA_INPUT_IS_NOT_NUMBER   = "Route parameter must be a number"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated request data"
	ERROR_EDIT                 = "Cannot save changes"

	CINEMA_NOT_FOUND   = "Cinema does not exist"
	HALL_NOT_FOUND     = "Hall does not exist"
	MOVIE_NOT_FOUND    = "Movie does not exist"
	RELEASE_NOT_FOUND  = "Movie release does not exist"
	SHOWTIME_NOT_FOUND = "Showtime does not exist"
	HOLIDAY_NOT_FOUND  = "Holiday does not exist"
)
