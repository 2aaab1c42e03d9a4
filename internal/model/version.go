package model

// Version is the current release version of dirinfo.
const Version = "0.2.0"
