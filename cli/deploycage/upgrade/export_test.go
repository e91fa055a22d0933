package upgrade

var ParseChecksums = parseChecksums
