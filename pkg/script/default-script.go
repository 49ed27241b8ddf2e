package script

const DefaultScript = `
name: Default Script
description: Walks the list through every operation, including the rejected ones.
initial: [1, 2, 3]
steps:

  # Construction and indexed reads.
  - op: count
    expect: { value: 3 }
  - op: get
    index: 0
    expect: { value: 1 }
  - op: get
    index: 2
    expect: { value: 3 }
  - op: get
    index: 3
    expect: { error: IndexOutOfRange }

  # Removing from the middle.
  - op: removeAt
    index: 1
    expect: { sequence: [1, 3], count: 2 }

  # Inserting at the head, in the middle and at the end.
  - op: insert
    index: 0
    value: 9
    expect: { sequence: [9, 1, 3] }
  - op: insert
    index: 2
    value: 7
    expect: { sequence: [9, 1, 7, 3] }
  - op: insert
    index: 4
    value: 8
    expect: { sequence: [9, 1, 7, 3, 8] }
  - op: insert
    index: 6
    value: 0
    expect: { error: IndexOutOfRange, count: 5 }

  # Absent values are rejected and leave the list alone.
  - op: add
    value: null
    expect: { error: InvalidArgument, count: 5 }
  - op: insert
    index: 0
    expect: { error: InvalidArgument, count: 5 }
  - op: remove
    expect: { error: InvalidArgument, count: 5 }

  # Membership uses real equality: the string "7" is not the number 7.
  - op: contains
    value: 7
    expect: { found: true }
  - op: contains
    value: "7"
    expect: { found: false }
  - op: indexOf
    value: 3
    expect: { index: 3 }
  - op: indexOf
    value: "3"
    expect: { index: -1 }
  - op: remove
    value: 7
    expect: { found: true, sequence: [9, 1, 3, 8] }
  - op: remove
    value: 7
    expect: { found: false, count: 4 }

  # In-place update.
  - op: set
    index: 3
    value: 4
    expect: { sequence: [9, 1, 3, 4] }

  # Copying out.
  - op: copyTo
    size: 6
    offset: 1
    expect: { buffer: [null, 9, 1, 3, 4, null] }
  - op: copyTo
    size: 2
    expect: { error: InvalidOperation, buffer: [null, null], count: 4 }
  - op: copyTo
    expect: { error: InvalidArgument }

  # Iteration leaves the list intact and can be repeated.
  - op: iterate
    expect: { buffer: [9, 1, 3, 4], count: 4 }
  - op: iterate
    expect: { buffer: [9, 1, 3, 4], count: 4 }

  # Clearing, then the empty-list boundary.
  - op: clear
    expect: { count: 0, sequence: [] }
  - op: contains
    value: 1
    expect: { found: false }
  - op: indexOf
    value: 1
    expect: { index: -1 }
  - op: get
    index: 0
    expect: { error: IndexOutOfRange }
  - op: removeAt
    index: 0
    expect: { error: IndexOutOfRange }
  - op: set
    index: 0
    value: 1
    expect: { error: IndexOutOfRange }
  - op: add
    value: 5
    expect: { sequence: [5], count: 1 }

  # Rebuilding from an absent source fails; an empty one is fine.
  - op: new
    expect: { error: InvalidArgument, sequence: [5] }
  - op: new
    from: slice
    values: [null, 1]
    expect: { count: 2 }
  - op: get
    index: 0
    expect: { value: null }
  - op: get
    index: 1
    expect: { value: 1 }
  - op: new
    from: seq
    values: []
    expect: { count: 0 }
  - op: new
    from: slice
    values: [a, b, c]
    expect: { sequence: [a, b, c] }
`
