package saltuser

// Version is the saltuser release version.
const Version = "0.1.0"
