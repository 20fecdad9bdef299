package config

// DefaultDatabasePath is the default path for the local harvest database.
const DefaultDatabasePath = "./noteharvester.db"
