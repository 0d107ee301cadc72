package config

// DEFAULT_KEEPME_YML is written to the config path the first time keepme runs
const DEFAULT_KEEPME_YML = `server:
  port: 3000

logging:
  # one of: debug, info, warn, error
  level: info

# Contacts listed here can be loaded into a session with 'keepme session --preset'.
# They are only read, never written back.
# e.g.
# contacts:
#   - name: Mom
#     phone: "01012345678"
#
contacts:
`
