package askpod

// Version is the release version of askpod.
const Version = "0.1.0"
