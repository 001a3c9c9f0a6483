package mcell

// Version is the release of the mcell module and command.
const Version = "0.1.0"
