package testutil

// BlocksHCL declares the four standard peripheral blocks.
const BlocksHCL = `
block "gpio" {
  instances = 4
  signal "ios" {
    type    = "inout"
    combine = "mux"
    length  = 8
  }
}

block "uart" {
  instances = 2
  signal "rx" {
    type    = "input"
    default = 1
  }
  signal "tx" {
    type = "output"
  }
}

block "i2c" {
  instances = 1
  signal "sda" {
    type    = "inout"
    combine = "and"
  }
  signal "scl" {
    type    = "inout"
    combine = "and"
  }
}

block "spi" {
  instances = 1
  signal "sck" {
    type = "output"
  }
  signal "copi" {
    type = "output"
  }
  signal "cipo" {
    type    = "input"
    default = 0
  }
  signal "cs" {
    type   = "output"
    length = 2
  }
}
`
