package main

import (
    "github.com/DivaythFyr2/fittrack/config"
    "github.com/DivaythFyr2/fittrack/routes"
)

func main() {
    config.InitDB()
    r := routes.SetupRouter(config.DB)
    r.Run(":8080")
}
