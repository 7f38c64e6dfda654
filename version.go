package stepline

// Version is the release of the stepline module.
const Version = "0.1.0"
