package omdb

// responseFalse is the "Response" flag of a failed lookup
const responseFalse = "False"

// SearchResponse represents the response of the "s=" search endpoint
type SearchResponse struct {
	Search       []SearchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error,omitempty"`
}

// SearchItem represents a single search hit
type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// DetailResponse represents the response of the "i=" lookup endpoint
type DetailResponse struct {
	Title      string   `json:"Title"`
	Year       string   `json:"Year"`
	Rated      string   `json:"Rated"`
	Released   string   `json:"Released"`
	Runtime    string   `json:"Runtime"`
	Genre      string   `json:"Genre"`
	Director   string   `json:"Director"`
	Writer     string   `json:"Writer"`
	Actors     string   `json:"Actors"`
	Plot       string   `json:"Plot"`
	Language   string   `json:"Language"`
	Country    string   `json:"Country"`
	Awards     string   `json:"Awards"`
	Poster     string   `json:"Poster"`
	Ratings    []Rating `json:"Ratings"`
	Metascore  string   `json:"Metascore"`
	IMDbRating string   `json:"imdbRating"`
	IMDbVotes  string   `json:"imdbVotes"`
	IMDbID     string   `json:"imdbID"`
	Type       string   `json:"Type"`
	Response   string   `json:"Response"`
	Error      string   `json:"Error,omitempty"`
}

// Rating represents one entry of the Ratings array
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}
