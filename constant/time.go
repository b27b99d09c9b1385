package constant

// DateLayout is the only calendar-date format accepted and produced at
// the API boundary. Entry and birth dates carry no time component.
const DateLayout = "2006-01-02"
